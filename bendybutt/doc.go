// Package bendybutt encodes and decodes Bendy Butt metafeed messages.
//
// A message is a bencoded list whose byte strings are BFE values:
//
//	[ [ previous, author, sequence, timestamp, content ], signature ]
//
//	content = box                                              (Private)
//	        | [ [ feedType, subfeed, metafeed, nonce ], sig ]  (Feed)
//
// sequence and timestamp are bencode integers; every other leaf is a BFE
// value of a fixed kind. The first message of a feed carries BFE nil as
// previous.
//
// Encode is deterministic and Decode is strict: Decode accepts exactly the
// bytes Encode produces for the decoded value, so the encoded bytes are
// suitable for hashing (MessageKey, CID) and signing (SignedBytes).
//
// BFE payloads carry identifier text rather than decoded key bytes, so the
// bytes and message keys are not interchangeable with ssb-bfe based
// implementations. See package bfe.
//
// Framing is delegated to github.com/zeebo/bencode; this package checks the
// message shape on top of it.
//
// Errors are *Error values; branch on Kind and RuleID, not on Error() text.
package bendybutt
