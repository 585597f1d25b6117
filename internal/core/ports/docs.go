// Package ports declares the outbound interfaces the core depends on:
// the remote order service, the credential service, the token store and the
// notification sink. Adapters under internal/adapters/out implement them;
// the core never imports an adapter package.
package ports
