// Package tui is the bubbletea front end: an age/size form, a loading
// spinner while the fact is fetched, and a results card.
package tui
