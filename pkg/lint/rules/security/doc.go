// Package security provides rules for credentials, transport and actions
// that affect physical access.
//
//   - SEC001: Insecure URL - plain http:// to a non-local host
//   - SEC002: Templated Shell Command - template data passed to shell_command
//   - SEC003: Hardcoded Secret - literal credential instead of !secret
//   - SEC004: Unguarded Sensitive Action - unlock/disarm/open with no condition
package security
