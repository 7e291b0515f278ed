package alphabet

// Standard alphabets. Characters are sorted by their code points.
const (
	Base2  = "01"
	Base10 = "0123456789"
	Base16 = "0123456789ABCDEF"
	Base62 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	Base64 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz+/"

	Numbers = Base10
	Hex     = Base16

	LettersLowercase = "abcdefghijklmnopqrstuvwxyz"
	LettersUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Letters          = LettersUppercase + LettersLowercase

	// URLUnreservedRFC3986 holds the characters allowed unescaped in a URI
	// (RFC 3986, section 2.3).
	URLUnreservedRFC3986 = "-.0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz~"

	// ASCII is the printable ASCII range, space through tilde.
	ASCII = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"
)
