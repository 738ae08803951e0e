/*
Package guarded provides a single-owner wrapper around an error or status value
that enforces a simple discipline: the stored value must be checked before it is
overwritten, transferred or closed. Forgetting to check is treated as a
programmer error - just like a compile error - and is therefore not recoverable
at runtime: it terminates the process at the point the omission happens. Refer
to the examples and unit tests for usage and details.

The original idea and code was based on the unique_error type proposed for the
C++ Guideline Support Library, adapted to Go's explicit ownership and error
conventions.
*/
package guarded
