// Package scicalc implements the expression evaluator of a scientific
// calculator.
//
// Expressions are written the way they come off a calculator keypad: numbers,
// + - * / % ^, parentheses, and named functions of one argument. A function
// name takes the single factor that follows it, so "sqrt4" and "sqrt(4)" are
// both 2. "-2^3^2" is the same as "-(2^(3^2))". Trigonometric functions work
// in degrees.
//
// A missing close parenthesis is tolerated: "(2+3" is 5.
//
// Evaluation uses float64 throughout. Division by zero and out-of-domain
// arguments produce infinities and NaNs rather than errors; deciding whether
// such a result is acceptable is left to the caller.
package scicalc
