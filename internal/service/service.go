// Package service contains the business logic.
//
// It sits between the handler layer and the downstream client.
// It receives validated data from the handler, forwards it, and
// translates the downstream outcome into the relay's error taxonomy.
package service
