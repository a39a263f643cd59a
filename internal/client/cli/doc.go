// Package cli implements the interactive VoidVault terminal client: the
// auth flow, the tabbed dashboard (feed, search, notifications, follow,
// chat, profile, advice), the legal pages and the admin console. Panels keep
// their own list state and status; all network traffic goes through the api
// package.
package cli
