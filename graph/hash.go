package graph

import (
	"strings"

	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash returns highwayhash-64 of the data
func Hash(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}

// Fingerprint returns an order independent hash of graph content
func Fingerprint(g Graph) (uint64, error) {
	builder := strings.Builder{}
	for _, edge := range Merge(g).Sorted() {
		builder.WriteString(edge.NodeName)
		builder.WriteString("\x00")
		builder.WriteString(strings.Join(edge.ParentNodes, "\x00"))
		builder.WriteString("\n")
	}
	return Hash([]byte(builder.String()))
}
