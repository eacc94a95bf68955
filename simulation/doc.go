// Package simulation holds the per-frame rules of the arena: player movement,
// the three robot behaviors, battery drain and removal, charge bar placement
// and notices. It works on a donburi.World and never touches ebitengine, so
// the same code runs in the game loop and in headless tests.
//
// A frame is one pass over Systems, in order. Robots that run out of charge
// are only marked during the update pass; RemoveExpired drops them once all
// updates are done, so the draw pass that follows never sees them.
package simulation
