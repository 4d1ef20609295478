// Package services contains the application services shared by the web
// panel and the console:
//
//   - Gate: process-wide authentication state backed by a session.Store.
//   - Directory: the remote user directory with failures mapped to the
//     error taxonomy in package common and logged.
//   - UserList: the dashboard's list state (page cursor, search term,
//     fetched and filtered records).
package services
