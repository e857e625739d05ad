// Package tlsroots builds the root certificate pool the API client trusts.
//
// The pool starts from the system roots and can add PEM bundles, so a
// self-hosted Teeline server with a private CA can be reached without
// disabling verification.
package tlsroots
