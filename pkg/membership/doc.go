// Package membership defines the role and membership model the authorization
// engine evaluates against, plus the store interfaces the host application
// implements on top of its own persistence.
//
// A Role aggregates a validated, dependency-closed permission set for one
// scope. A Membership binds a user to a role on a specific resource; there is
// exactly one membership per (user, resource) pair, and a resource always
// keeps at least one membership whose role has IsOwner set.
//
// The engine never mutates memberships; it only reads through Store and
// RoleStore. MemoryStore is a thread-safe in-memory implementation of both,
// intended for tests and wiring examples.
package membership
