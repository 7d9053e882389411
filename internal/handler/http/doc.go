// Package http implements the session gateway: a backend-for-frontend that
// exposes the qodefly API to browser front ends and keeps the bearer token in
// an HttpOnly signed cookie instead of page-accessible storage.
package http
