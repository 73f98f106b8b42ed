// Package notekeeper is the Composition Root for the note keeper client.
//
// It connects the core domain (notes, validation) with the REST adapter and
// models the state of a single list-plus-detail page: the sidebar list, the
// selected note, the draft under edit, and the one-line error banner. The
// list is a transient cache refetched from the backend after every write;
// nothing is persisted on the client.
//
// Usage:
//
//	// Connect with functional options
//	sess, err := notekeeper.Open("http://localhost:4000",
//		notekeeper.WithTimeout(5*time.Second),
//		notekeeper.WithLogger(logger),
//	)
//	if err != nil {
//		// handle
//	}
//	defer sess.Close()
//
//	// Load the sidebar, start a draft, save it
//	_ = sess.Refresh(ctx)
//	sess.StartNew()
//	sess.SetTitle("groceries")
//	note, err := sess.Save(ctx)
package notekeeper
