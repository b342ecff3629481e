package bfe

// Type codes.
const (
	typeFeed      byte = 0x00
	typeMessage   byte = 0x01
	typeSignature byte = 0x04
	typeEncrypted byte = 0x05
	typeGeneric   byte = 0x06
)

// Generic format codes.
const (
	genericString byte = 0x00
	genericNil    byte = 0x02
	genericBytes  byte = 0x03
)

type format struct {
	code   byte
	suffix string
}

type family struct {
	kind    Kind
	typ     byte
	def     byte
	formats []format
}

// families is the closed tag table. Order is lookup order; keep it stable.
var families = []family{
	{
		kind: KindFeed,
		typ:  typeFeed,
		def:  0x03,
		formats: []format{
			{0x00, ".ed25519"},
			{0x01, ".ggfeed-v1"},
			{0x02, ".bamboo"},
			{0x03, ".bbfeed-v1"},
		},
	},
	{
		kind: KindMessage,
		typ:  typeMessage,
		def:  0x04,
		formats: []format{
			{0x00, ".sha256"},
			{0x01, ".ggmsg-v1"},
			{0x02, ".cloaked"},
			{0x03, ".bamboo"},
			{0x04, ".bbmsg-v1"},
		},
	},
	{
		kind:    KindSignature,
		typ:     typeSignature,
		def:     0x00,
		formats: []format{{0x00, ".sig.ed25519"}},
	},
	{
		kind: KindBox,
		typ:  typeEncrypted,
		def:  0x01,
		formats: []format{
			{0x00, ".box"},
			{0x01, ".box2"},
		},
	},
	{kind: KindString, typ: typeGeneric, def: genericString, formats: []format{{genericString, ""}}},
	{kind: KindNil, typ: typeGeneric, def: genericNil, formats: []format{{genericNil, ""}}},
	{kind: KindBytes, typ: typeGeneric, def: genericBytes, formats: []format{{genericBytes, ""}}},
}

func lookupKind(k Kind) (family, bool) {
	for _, f := range families {
		if f.kind == k {
			return f, true
		}
	}
	return family{}, false
}

func lookupTag(t Tag) (Kind, bool) {
	for _, f := range families {
		if f.typ != t.Type() {
			continue
		}
		for _, ff := range f.formats {
			if ff.code == t.Format() {
				return f.kind, true
			}
		}
	}
	return KindInvalid, false
}
