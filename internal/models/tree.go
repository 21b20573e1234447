package models

import (
	"fmt"
	"sort"
)

// TreeNodeType represents the type of a library tree node
type TreeNodeType string

const (
	TreeNodeTypeRoot   TreeNodeType = "root"
	TreeNodeTypeArtist TreeNodeType = "artist"
	TreeNodeTypeAlbum  TreeNodeType = "album"
	TreeNodeTypeTrack  TreeNodeType = "track"
)

// TreeNode represents a node in the library navigation tree
type TreeNode struct {
	ID         string       // Unique identifier (e.g., "artist:Beatles", "album:Beatles/Revolver")
	Type       TreeNodeType // Type of node
	Label      string       // Display text
	Parent     *TreeNode    // Parent node (nil for root)
	Children   []*TreeNode  // Child nodes
	Expanded   bool         // Whether node is expanded
	Selectable bool         // Whether node can be selected
	Track      *Track       // Track metadata for track nodes
}

// NewTreeNode creates a new tree node
func NewTreeNode(id string, nodeType TreeNodeType, label string) *TreeNode {
	return &TreeNode{
		ID:         id,
		Type:       nodeType,
		Label:      label,
		Children:   make([]*TreeNode, 0),
		Selectable: nodeType != TreeNodeTypeRoot,
	}
}

// AddChild adds a child node to this node
func (n *TreeNode) AddChild(child *TreeNode) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Toggle toggles the expanded state of the node. Track nodes are leaves and
// cannot be expanded.
func (n *TreeNode) Toggle() {
	if n.Type == TreeNodeTypeTrack {
		return
	}
	if len(n.Children) > 0 {
		n.Expanded = !n.Expanded
	}
}

// Flatten returns a flat list of visible nodes for rendering, based on the
// expansion state of each node's ancestors. The root itself is skipped.
func (n *TreeNode) Flatten() []*TreeNode {
	result := make([]*TreeNode, 0)
	if n.Type != TreeNodeTypeRoot {
		result = append(result, n)
	}
	if n.Expanded || n.Type == TreeNodeTypeRoot {
		for _, child := range n.Children {
			result = append(result, child.Flatten()...)
		}
	}
	return result
}

// FindByID finds a node by ID in the tree (depth-first search)
func (n *TreeNode) FindByID(id string) *TreeNode {
	if n.ID == id {
		return n
	}
	for _, child := range n.Children {
		if found := child.FindByID(id); found != nil {
			return found
		}
	}
	return nil
}

// GetDepth returns the depth of this node in the tree (root = 0)
func (n *TreeNode) GetDepth() int {
	depth := 0
	for current := n.Parent; current != nil; current = current.Parent {
		depth++
	}
	return depth
}

// Tracks collects every track at or below this node, in tree order
func (n *TreeNode) Tracks() []Track {
	var tracks []Track
	if n.Track != nil {
		tracks = append(tracks, *n.Track)
	}
	for _, child := range n.Children {
		tracks = append(tracks, child.Tracks()...)
	}
	return tracks
}

// BuildLibraryTree arranges scanned tracks into an artist → album → track
// hierarchy. Artists and albums are sorted alphabetically; tracks keep their
// scan order within an album. Tracks without artist or album metadata are
// grouped under "Unknown Artist" / "Unknown Album".
func BuildLibraryTree(tracks []Track) *TreeNode {
	root := NewTreeNode("root", TreeNodeTypeRoot, "Library")
	root.Expanded = true

	type albumKey struct {
		artist, album string
	}

	artists := make(map[string]*TreeNode)
	albums := make(map[albumKey]*TreeNode)

	for i := range tracks {
		track := tracks[i]

		artist := track.Artist
		if artist == "" {
			artist = "Unknown Artist"
		}
		album := track.Album
		if album == "" {
			album = "Unknown Album"
		}

		artistNode, ok := artists[artist]
		if !ok {
			artistNode = NewTreeNode(fmt.Sprintf("artist:%s", artist), TreeNodeTypeArtist, artist)
			artists[artist] = artistNode
		}

		key := albumKey{artist: artist, album: album}
		albumNode, ok := albums[key]
		if !ok {
			albumNode = NewTreeNode(fmt.Sprintf("album:%s/%s", artist, album), TreeNodeTypeAlbum, album)
			albums[key] = albumNode
			artistNode.AddChild(albumNode)
		}

		label := track.Title
		if label == "" {
			label = track.Path
		}
		trackNode := NewTreeNode(fmt.Sprintf("track:%s", track.Path), TreeNodeTypeTrack, label)
		trackNode.Track = &tracks[i]
		albumNode.AddChild(trackNode)
	}

	names := make([]string, 0, len(artists))
	for name := range artists {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		artistNode := artists[name]
		sort.Slice(artistNode.Children, func(i, j int) bool {
			return artistNode.Children[i].Label < artistNode.Children[j].Label
		})
		root.AddChild(artistNode)
	}

	return root
}
