package bendybutt

// NoPrevious is the Previous value of the first message in a feed.
const NoPrevious = ""

// Msg is one metafeed log entry. Msg values are comparable with ==.
type Msg struct {
	Previous  string
	Author    string
	Sequence  int64
	Timestamp int64
	Signature string
	Content   Content
}

// IsFirst reports whether m has no previous message.
func (m Msg) IsFirst() bool { return m.Previous == NoPrevious }

// Content is either Private or Feed.
type Content interface {
	isContent()
}

// Private is an encrypted payload, opaque to the codec.
type Private struct {
	Ciphertext string
}

// Feed is a metafeed-management payload with its own signature, distinct
// from Msg.Signature.
type Feed struct {
	Data      FeedData
	Signature string
}

// FeedData declares a subfeed. Field order on the wire is declaration order.
type FeedData struct {
	FeedType string
	Subfeed  string
	Metafeed string
	Nonce    string
}

func (Private) isContent() {}
func (Feed) isContent()    {}
