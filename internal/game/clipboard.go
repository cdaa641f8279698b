package game

import "github.com/atotto/clipboard"

// setClipboardText places text on the system clipboard.
var setClipboardText = clipboard.WriteAll
