// Package credentials provides credential-management primitives: bcrypt
// password hashing, a Bun-backed user store with storage-level username
// uniqueness, HS256 token issuance and verification, and login orchestration
// that never reveals whether a username exists.
//
// Registration and login:
//   - RegisterUserHandler validates a RegisterUserMessage, hashes the password
//     inside a transaction, and inserts the user. Duplicate usernames surface
//     as ErrUsernameTaken regardless of interleaving; the database constraint
//     is the source of truth.
//   - Auther.Login resolves the identity, compares the password against the
//     stored hash, and returns a signed token. Unknown users and wrong
//     passwords both return ErrMismatchedHashAndPassword.
//
// Guards:
//   - middleware/jwtware extracts and validates bearer tokens and can enforce
//     a minimum role. RouteAuthenticator exposes ProtectedRoute and AdminRoute
//     helpers built on it.
//
// Tokens are stateless: once issued they remain valid until their expiry, and
// by default they carry none. Callers that need bounded tokens set a token
// expiration on Config or mint per-token TTLs with MintScopedToken.
package credentials
