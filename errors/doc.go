/*
Package errors implements the error handling used across the vault.

Every error returned by this module wraps one of the registered root
errors. Roots carry a unique numeric code and a short description. Use
the root's Is method to test what kind of failure an error represents,
and Wrap/Wrapf to attach call-site context while preserving the root and
its stack trace.

Generic roots are declared here. Packages owning a domain declare their
own roots through Register, using a code range that does not collide
with any other package.
*/
package errors
