package mirror

// Refresh tells the caller how the mirror caught up with a write.
type Refresh string

const (
	// RefreshNone means nothing changed.
	RefreshNone Refresh = "none"
	// RefreshPatched means the tree was edited in place after the write.
	RefreshPatched Refresh = "patched"
	// RefreshReread means one relation was re-read from the store.
	RefreshReread Refresh = "reread"
	// RefreshReloaded means the whole tree was reloaded.
	RefreshReloaded Refresh = "reloaded"
)

// CardContent is an edit of a card's text. A blank title is ignored; an
// empty description clears it.
type CardContent struct {
	Title       *string
	Description *string
}
