// Package web serves the admin panel: the view router with its
// protected-route guard, and the Login, Dashboard and Edit-Profile views
// rendered with html/template.
//
// Routes:
//
//	GET  /                              redirect to /login, always
//	GET  /login                         login form
//	POST /login                         authenticate, then go to /dashboard
//	POST /logout                        clear the session, then go to /login
//	GET  /dashboard[?page=N][&q=term]   user list (protected)
//	GET  /dashboard/users/{id}/delete   delete confirmation (protected)
//	POST /dashboard/users/{id}/delete   delete (protected)
//	GET  /edit/{id}                     edit form (protected)
//	POST /edit/{id}                     save (protected)
//
// Until the auth gate has read the session store every request gets a
// "Loading..." page with status 503.
package web
