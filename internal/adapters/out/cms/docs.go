// Package cms implements the CredentialService port against the CMS user
// API, which issues and verifies the session tokens the dashboard presents
// to the order service.
package cms
