package dsl

import validkit "github.com/reoring/validkit"

// Bare kind markers.
const (
	String  = validkit.KindString
	Integer = validkit.KindInt
	Number  = validkit.KindFloat
	Boolean = validkit.KindBool
)

// Str returns a string node.
func Str() validkit.Node { return validkit.NodeOf(validkit.KindString) }

// Int returns an integer node.
func Int() validkit.Node { return validkit.NodeOf(validkit.KindInt) }

// Float returns a float node.
func Float() validkit.Node { return validkit.NodeOf(validkit.KindFloat) }

// Bool returns a boolean node.
func Bool() validkit.Node { return validkit.NodeOf(validkit.KindBool) }
