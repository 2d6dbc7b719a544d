package dom

import "testing"

func TestCreateAndAppend(t *testing.T) {
	div := CreateElement("div")
	div.AppendChild(CreateText("hello"))
	div.AppendChild(CreateComment("marker"))

	if div.Kind != KindElement || div.Tag != "div" {
		t.Errorf("unexpected element %+v", div)
	}
	if len(div.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(div.Children))
	}
	if div.Children[0].Kind != KindText || div.Children[0].Text != "hello" {
		t.Errorf("unexpected text child %+v", div.Children[0])
	}
	if div.Children[1].Kind != KindComment {
		t.Errorf("expected comment child, got %+v", div.Children[1])
	}
}

func TestFragmentGroupsChildren(t *testing.T) {
	frag := CreateFragment(CreateText("a"), CreateText("b"))
	if frag.Kind != KindFragment || len(frag.Children) != 2 {
		t.Errorf("unexpected fragment %+v", frag)
	}
}

func TestSetProperty(t *testing.T) {
	span := CreateElement("span")
	span.SetProperty("textContent", "42")

	if span.Property("textContent") != "42" {
		t.Errorf("expected property set, got %v", span.Property("textContent"))
	}
	if span.Property("missing") != nil {
		t.Error("unset property should be nil")
	}
}

func TestIDGeneratorSequence(t *testing.T) {
	gen := NewIDGenerator()

	if id := gen.Next(); id != "s1" {
		t.Errorf("expected s1, got %s", id)
	}
	if id := gen.Next(); id != "s2" {
		t.Errorf("expected s2, got %s", id)
	}

	gen.Reset()
	if id := gen.Next(); id != "s1" {
		t.Errorf("expected s1 after reset, got %s", id)
	}
}

func TestFindBySeidrID(t *testing.T) {
	root := CreateElement("div")
	inner := CreateElement("span")
	inner.SeidrID = "s1"
	root.AppendChild(CreateElement("p").AppendChild(inner))

	if found := FindBySeidrID(root, "s1"); found != inner {
		t.Errorf("expected inner node, got %+v", found)
	}
	if found := FindBySeidrID(root, "s9"); found != nil {
		t.Errorf("missing id should return nil, got %+v", found)
	}
	if found := FindBySeidrID(root, ""); found != nil {
		t.Error("empty id should return nil")
	}
}

func TestCollectSeidrIDs(t *testing.T) {
	root := CreateElement("div")
	a := CreateElement("span")
	a.SeidrID = "s1"
	b := CreateElement("button")
	b.SeidrID = "s2"
	root.AppendChild(a).AppendChild(b)

	ids := CollectSeidrIDs(root)
	if len(ids) != 2 || ids["s1"] != a || ids["s2"] != b {
		t.Errorf("unexpected collection %v", ids)
	}
}
