package smolscale

import (
	"bytes"
	"sync"
	"testing"
)

func TestBatchRejectsOverlappingBuffers(t *testing.T) {
	ctx, err := New(RGBA8Unassociated, 8, 8, RGBA8Unassociated, 4, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	buf := make([]byte, 8*8*4)
	// pixelsOut is a sub-slice of the same backing array as pixelsIn.
	out := buf[4:]

	if err := ctx.Batch(buf, out, 0, 4, nil); err == nil {
		t.Fatal("expected ErrBufferOverlap, got nil")
	}
}

func TestBatchDisjointRangesConcurrent(t *testing.T) {
	const widthIn, heightIn = 37, 50
	const widthOut, heightOut = 13, 20

	in := make([]byte, widthIn*heightIn*4)
	for i := range in {
		in[i] = byte(i * 13)
	}

	ctx, err := New(RGBA8Unassociated, widthIn, heightIn, RGBA8Unassociated, widthOut, heightOut)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	sequential := make([]byte, widthOut*heightOut*4)
	if err := ctx.Batch(in, sequential, 0, heightOut, nil); err != nil {
		t.Fatalf("sequential Batch: %v", err)
	}

	concurrent := make([]byte, widthOut*heightOut*4)
	mid := heightOut / 2

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		errs[0] = ctx.Batch(in, concurrent, 0, mid, nil)
	}()
	go func() {
		defer wg.Done()
		errs[1] = ctx.Batch(in, concurrent, mid, heightOut, nil)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			t.Fatalf("concurrent Batch: %v", err)
		}
	}

	if !bytes.Equal(sequential, concurrent) {
		t.Fatal("disjoint concurrent Batch calls produced different output than one sequential call")
	}
}

func TestBatchPostRowCallback(t *testing.T) {
	ctx, err := New(RGBA8Premultiplied, 4, 4, RGBA8Premultiplied, 2, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	in := make([]byte, 4*4*4)
	for i := range in {
		in[i] = 0xff
	}
	out := make([]byte, 2*2*4)

	var rowsSeen int
	err = ctx.Batch(in, out, 0, 2, func(row []byte, width int) {
		rowsSeen++
		if width != 2 {
			t.Fatalf("callback width = %d, want 2", width)
		}
		if len(row) != width*4 {
			t.Fatalf("callback row length = %d, want %d", len(row), width*4)
		}
	})
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	if rowsSeen != 2 {
		t.Fatalf("rowsSeen = %d, want 2", rowsSeen)
	}
}

func TestBatchInvalidRowRange(t *testing.T) {
	ctx, err := New(RGBA8Unassociated, 4, 4, RGBA8Unassociated, 4, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	in := make([]byte, 4*4*4)
	out := make([]byte, 4*4*4)

	if err := ctx.Batch(in, out, -1, 4, nil); err == nil {
		t.Fatal("expected error for negative rowStart")
	}
	if err := ctx.Batch(in, out, 2, 1, nil); err == nil {
		t.Fatal("expected error for rowStart > rowEnd")
	}
	if err := ctx.Batch(in, out, 0, 5, nil); err == nil {
		t.Fatal("expected error for rowEnd beyond heightOut")
	}
}
