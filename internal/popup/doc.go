// Package popup drives the live 2FA code popup of one account.
//
// The popup moves Closed → Loading → Displaying → Closed. At most one popup
// exists: opening another account closes the current one first. While
// displaying, a tick recomputes the code and the remaining time; the tick is
// stopped synchronously on Close and stops itself if it outlives the popup.
package popup
