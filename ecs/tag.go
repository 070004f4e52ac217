package ecs

// Tag partitions entities into the views the systems iterate. An entity's
// tag is fixed when it is created.
type Tag uint8

const (
	TagTile Tag = iota
	TagDecoration
	TagPlayer
	TagBullet

	tagCount
)

var tagNames = [tagCount]string{
	TagTile:       "tile",
	TagDecoration: "decoration",
	TagPlayer:     "player",
	TagBullet:     "bullet",
}

func (t Tag) String() string {
	if t < tagCount {
		return tagNames[t]
	}
	return "unknown"
}

// Valid reports whether t is one of the declared tags.
func (t Tag) Valid() bool {
	return t < tagCount
}

// Tags returns every declared tag in declaration order.
func Tags() []Tag {
	tags := make([]Tag, tagCount)
	for i := range tags {
		tags[i] = Tag(i)
	}
	return tags
}
