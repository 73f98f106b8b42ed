// Package notekeeper is the Composition Root for the notekeeper client.
//
// It connects the core domain (notes, validation, the backend port) with the
// infrastructure adapters (the REST client) using the Hexagonal Architecture
// pattern.
//
// Philosophy:
//
// Notekeeper models the classic notes page: a sidebar listing every note and
// a panel for viewing or editing the selected one. The backend owns the data;
// the client holds only a transient cache of the list and refetches it after
// every write. Everything else (selection, drafts, the error banner) is page
// state that lives in a Session.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain is isolated from transport details.
//   - **Refetch After Write**: Saves and deletes re-pull the list, so the cache
//     never drifts from the backend.
//   - **Change Feed**: Refreshes diff the cache and publish CREATE/MODIFY/DELETE
//     events, with optional background polling.
//   - **Default Adapter (REST)**: Out-of-the-box client for the four-call notes
//     API (list, create, update, delete).
//   - **Extensible**: Designed to support other backends via `core.Repository`.
//
// Usage:
//
//	// Open a session with functional options
//	sess, err := notekeeper.Open("http://localhost:4000",
//		notekeeper.WithTimeout(5*time.Second),
//		notekeeper.WithLogger(logger),
//	)
//
//	// Load the list, draft a note, save it
//	err = sess.Refresh(ctx)
//	sess.StartNew()
//	sess.SetTitle("Groceries")
//	saved, err := sess.Save(ctx)
package notekeeper
