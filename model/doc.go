// Package model holds the classroom data: students, tables of seats, and the room grid.
//
// Only seat contents and enabled flags change during a session. Table capacity and
// position are fixed when the room is built.
package model
