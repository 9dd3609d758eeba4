// Package auth provides credential verification for the admin login
// endpoint and the bearer-token gate applied to mutating API routes.
//
// Authentication is deliberately minimal: a successful login hands out
// a single static token and the gate accepts exactly that token. The
// CredentialVerifier and TokenVerifier interfaces keep both sides
// injectable so a real session implementation can replace them without
// touching handler contracts.
package auth
