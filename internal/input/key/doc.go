// Package key describes keyboard input and translates it into cursor
// movement intents.
//
// Translation is a total function: every Event maps to exactly one Intent,
// and keys without a binding map to IntentNone.
package key
