package selene

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// attrKind classifies how a prop value is written as an attribute.
type attrKind int

const (
	attrOmit    attrKind = iota // nil, false, functions
	attrBoolean                 // true: bare attribute
	attrValue                   // everything else: formatted value
)

// propAttribute decides how val renders as an attribute value.
func propAttribute(val any) (string, attrKind) {
	switch v := val.(type) {
	case nil:
		return "", attrOmit
	case bool:
		if v {
			return "", attrBoolean
		}
		return "", attrOmit
	case string:
		return v, attrValue
	}
	if isFunc(val) {
		return "", attrOmit
	}
	return fmt.Sprint(val), attrValue
}

// eventName maps a handler prop key to its event name: onClick -> click.
// The second result is false for keys that are not handler keys.
func eventName(key string) (string, bool) {
	if len(key) <= 2 || !strings.HasPrefix(key, "on") {
		return "", false
	}
	return strings.ToLower(key[2:]), true
}

// attributeKeys returns the keys of p that can become attributes or
// listeners, sorted.
func attributeKeys(p Props) []string {
	keys := sortedKeys(p)
	return slices.DeleteFunc(keys, func(k string) bool { return k == ChildrenProp })
}

func isFunc(val any) bool {
	return val != nil && reflect.TypeOf(val).Kind() == reflect.Func
}
