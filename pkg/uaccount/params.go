package uaccount

import (
	"net/url"
	"sort"
)

// Param is a single request parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of request parameters with unique keys.
// Insertion order is kept for the wire; signing always uses Sorted.
type Params []Param

// NewParams builds a Params from key/value pairs, later keys replacing earlier ones.
func NewParams(pairs ...Param) Params {
	p := make(Params, 0, len(pairs))
	for _, pair := range pairs {
		p.Set(pair.Key, pair.Value)
	}
	return p
}

// Set adds the parameter, or replaces the value in place if the key exists.
func (p *Params) Set(key, value string) {
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Value = value
			return
		}
	}
	*p = append(*p, Param{Key: key, Value: value})
}

// Get returns the value for key and whether it was present.
func (p Params) Get(key string) (string, bool) {
	for _, pair := range p {
		if pair.Key == key {
			return pair.Value, true
		}
	}
	return "", false
}

// Del removes key if present.
func (p *Params) Del(key string) {
	for i := range *p {
		if (*p)[i].Key == key {
			*p = append((*p)[:i], (*p)[i+1:]...)
			return
		}
	}
}

// Sorted returns a copy ordered lexicographically by key.
func (p Params) Sorted() Params {
	sorted := make(Params, len(p))
	copy(sorted, p)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key < sorted[j].Key
	})
	return sorted
}

// Values converts the parameters to url.Values for form or query encoding.
func (p Params) Values() url.Values {
	values := make(url.Values, len(p))
	for _, pair := range p {
		values.Set(pair.Key, pair.Value)
	}
	return values
}
