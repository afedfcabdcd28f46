// Package diff computes the error behavior of finite-difference
// approximations to f'(x) for f(x) = sin(x) at x = 1.
//
// For a sweep of step sizes h it produces, per h, the actual
// approximation error of the forward and central difference formulas
// together with their theoretical truncation and rounding bounds:
//
//   - forward:  (f(x+h) - f(x)) / h       truncation h/2, rounding 2ε/h
//   - central:  (f(x+h) - f(x-h)) / (2h)  truncation h²/6, rounding ε/h
//
// [ComputeOptimalPoints] balances the two bounds in closed form to give
// the step size minimizing total error for each formula.
//
// All computation is pure: no I/O, no globals, identical inputs yield
// bit-identical outputs. [Cache] adds optional memoization on top.
package diff
