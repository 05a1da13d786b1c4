package model

// Package model defines the domain data structures shared across the app: the
// update status snapshot and the tracker state enum. Structures are designed
// for direct display in the UI and explicit state transitions.
