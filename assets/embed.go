// Package assets embeds the default dictionary so the servers can start
// without any word list configured.
package assets

import _ "embed"

// Words is the embedded word list: one word per line, "#" comments allowed.
//
//go:embed words.txt
var Words []byte
