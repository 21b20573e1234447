package models

import (
	"testing"
)

func libraryTracks() []Track {
	return []Track{
		{Path: "/music/Beatles/Revolver/Taxman.mp3", Title: "Taxman", Artist: "Beatles", Album: "Revolver"},
		{Path: "/music/Beatles/Revolver/Eleanor Rigby.mp3", Title: "Eleanor Rigby", Artist: "Beatles", Album: "Revolver"},
		{Path: "/music/Beatles/Abbey Road/Come Together.mp3", Title: "Come Together", Artist: "Beatles", Album: "Abbey Road"},
		{Path: "/music/Aphex Twin/Drukqs/Avril 14th.mp3", Title: "Avril 14th", Artist: "Aphex Twin", Album: "Drukqs"},
	}
}

func TestBuildLibraryTree(t *testing.T) {
	root := BuildLibraryTree(libraryTracks())

	if root.Type != TreeNodeTypeRoot {
		t.Fatalf("expected root node, got %s", root.Type)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 artists, got %d", len(root.Children))
	}

	// Artists sorted alphabetically
	if root.Children[0].Label != "Aphex Twin" || root.Children[1].Label != "Beatles" {
		t.Errorf("artists not sorted: %s, %s", root.Children[0].Label, root.Children[1].Label)
	}

	beatles := root.Children[1]
	if len(beatles.Children) != 2 {
		t.Fatalf("expected 2 Beatles albums, got %d", len(beatles.Children))
	}
	// Albums sorted alphabetically
	if beatles.Children[0].Label != "Abbey Road" || beatles.Children[1].Label != "Revolver" {
		t.Errorf("albums not sorted: %s, %s", beatles.Children[0].Label, beatles.Children[1].Label)
	}

	revolver := beatles.Children[1]
	if len(revolver.Children) != 2 {
		t.Fatalf("expected 2 Revolver tracks, got %d", len(revolver.Children))
	}
	if revolver.Children[0].Track == nil {
		t.Error("track node should carry its track")
	}
}

func TestBuildLibraryTree_UnknownMetadata(t *testing.T) {
	root := BuildLibraryTree([]Track{{Path: "/music/loose.mp3", Title: "Loose"}})

	if len(root.Children) != 1 {
		t.Fatalf("expected 1 artist, got %d", len(root.Children))
	}
	artist := root.Children[0]
	if artist.Label != "Unknown Artist" {
		t.Errorf("expected 'Unknown Artist', got %q", artist.Label)
	}
	if len(artist.Children) != 1 || artist.Children[0].Label != "Unknown Album" {
		t.Errorf("expected 'Unknown Album' fallback, got %+v", artist.Children)
	}
}

func TestFlatten_RespectsExpansion(t *testing.T) {
	root := BuildLibraryTree(libraryTracks())

	// Only artists are visible while everything is collapsed
	visible := root.Flatten()
	if len(visible) != 2 {
		t.Fatalf("expected 2 visible nodes, got %d", len(visible))
	}

	beatles := root.FindByID("artist:Beatles")
	if beatles == nil {
		t.Fatal("Beatles node not found")
	}
	beatles.Toggle()

	visible = root.Flatten()
	if len(visible) != 4 { // 2 artists + 2 Beatles albums
		t.Errorf("expected 4 visible nodes after expanding Beatles, got %d", len(visible))
	}
}

func TestToggle_TrackNodesStayLeaves(t *testing.T) {
	root := BuildLibraryTree(libraryTracks())

	track := root.FindByID("track:/music/Beatles/Revolver/Taxman.mp3")
	if track == nil {
		t.Fatal("track node not found")
	}

	track.Toggle()
	if track.Expanded {
		t.Error("track nodes must not expand")
	}
}

func TestTracks_CollectsSubtree(t *testing.T) {
	root := BuildLibraryTree(libraryTracks())

	beatles := root.FindByID("artist:Beatles")
	if beatles == nil {
		t.Fatal("Beatles node not found")
	}

	tracks := beatles.Tracks()
	if len(tracks) != 3 {
		t.Errorf("expected 3 Beatles tracks, got %d", len(tracks))
	}

	all := root.Tracks()
	if len(all) != 4 {
		t.Errorf("expected 4 tracks from the root, got %d", len(all))
	}
}

func TestGetDepth(t *testing.T) {
	root := BuildLibraryTree(libraryTracks())

	if root.GetDepth() != 0 {
		t.Errorf("root depth should be 0, got %d", root.GetDepth())
	}

	track := root.FindByID("track:/music/Aphex Twin/Drukqs/Avril 14th.mp3")
	if track == nil {
		t.Fatal("track node not found")
	}
	if track.GetDepth() != 3 {
		t.Errorf("track depth should be 3, got %d", track.GetDepth())
	}
}
