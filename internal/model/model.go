// Package model holds the request shapes the relay receives and forwards.
package model
