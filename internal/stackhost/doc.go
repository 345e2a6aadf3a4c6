// Package stackhost contains the StackHost backend integration core: the
// credential resolver, the transport client with its response-normalization
// pipeline, and the account context resolver.
//
// The backend is inconsistent about response shapes. It can return
// well-formed JSON, bare strings, double-encoded JSON strings, unquoted
// pseudo-JSON object literals, and HTML error pages. All of that sniffing
// lives in exactly one place here (normalize.go); domain tool handlers only
// ever see normalized structured values or one of the classified errors in
// errors.go.
//
// A Client is constructed once by the process root and passed by reference
// to every tool module. Its only mutable state is the memoized account
// identifier, which is resolved lazily with single-flight semantics: the
// first caller performs the network call, concurrent callers wait for that
// same call, and failures are never cached.
package stackhost
