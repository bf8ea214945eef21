package input

import "testing"

func TestDragState_FullDragEndsIdle(t *testing.T) {
	var d DragState
	if !d.Handle(DragStart, Point{1, 2}) {
		t.Fatalf("DragStart from idle rejected")
	}
	if got := d.Phase(); got != DragDragging {
		t.Fatalf("phase=%v, want %v", got, DragDragging)
	}
	if init, ok := d.Initial(); !ok || init != (Point{1, 2}) {
		t.Fatalf("initial=%v,%v, want {1 2},true", init, ok)
	}

	for _, ev := range []DragEvent{Drag, Drag, DragEnd} {
		if !d.Handle(ev, Point{4, 2}) {
			t.Fatalf("%v while dragging rejected", ev)
		}
	}
	if got := d.Phase(); got != DragIdle {
		t.Fatalf("phase=%v, want %v", got, DragIdle)
	}
	if _, ok := d.Initial(); ok {
		t.Fatalf("initial point kept after DragEnd")
	}
}

func TestDragState_DragWithoutStartIsIgnored(t *testing.T) {
	var d DragState
	before := d
	if d.Handle(Drag, Point{1, 1}) {
		t.Fatalf("Drag from idle accepted")
	}
	if d != before {
		t.Fatalf("state=%+v, want %+v", d, before)
	}

	d.Handle(HoverStart, Point{})
	before = d
	if d.Handle(Drag, Point{1, 1}) || d.Handle(DragEnd, Point{1, 1}) {
		t.Fatalf("Drag/DragEnd while hovering accepted")
	}
	if d != before {
		t.Fatalf("state=%+v, want %+v", d, before)
	}
}

func TestDragState_SecondDragStartIsRejected(t *testing.T) {
	var d DragState
	d.Handle(DragStart, Point{1, 1})
	if d.Handle(DragStart, Point{9, 9}) {
		t.Fatalf("second DragStart accepted")
	}
	if init, _ := d.Initial(); init != (Point{1, 1}) {
		t.Fatalf("initial=%v, want {1 1}", init)
	}
}

func TestDragState_Hover(t *testing.T) {
	var d DragState
	d.Handle(HoverStart, Point{})
	if got := d.Phase(); got != DragHovering {
		t.Fatalf("phase=%v, want %v", got, DragHovering)
	}
	d.Handle(HoverEnd, Point{})
	if got := d.Phase(); got != DragIdle {
		t.Fatalf("phase=%v, want %v", got, DragIdle)
	}

	// Leaving mid-drag keeps dragging.
	d.Handle(HoverStart, Point{})
	d.Handle(DragStart, Point{})
	d.Handle(HoverEnd, Point{})
	if got := d.Phase(); got != DragDragging {
		t.Fatalf("phase=%v, want %v", got, DragDragging)
	}
}
