package model

// Asset is a known crypto asset: a canonical ticker and its display name.
type Asset struct {
	Symbol string
	Name   string
}
