// Package bindings provides a hand-built flatbuffers wire format for the
// solver's external entry points: no .fbs schema or flatc codegen is used,
// tables are packed and unpacked directly against the Builder/Table
// primitives the generated code would otherwise wrap.
package bindings

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// SolveRequest field slots, in declaration order. Declared once here so
// Encode and Decode never drift apart on vtable indices.
const (
	slotHand0         = 0
	slotHand1         = 1
	slotHand2         = 2
	slotHand3         = 3
	slotTrump         = 4
	slotCurrentPlayer = 5
	slotTricksWon0    = 6
	slotTricksWon1    = 7
	slotPoints0       = 8
	slotPoints1       = 9
	slotDepthCap      = 10
	solveRequestNumFields = 11
)

// EncodeSolveRequest packs a play state and a depth cap into a flatbuffers
// table.
func EncodeSolveRequest(b *flatbuffers.Builder, hands [4]uint32, trump, currentPlayer uint8, tricksWon [2]uint8, points [2]uint16, depthCap int32) flatbuffers.UOffsetT {
	b.StartObject(solveRequestNumFields)
	b.PrependInt32Slot(slotDepthCap, depthCap, 0)
	b.PrependUint16Slot(slotPoints1, points[1], 0)
	b.PrependUint16Slot(slotPoints0, points[0], 0)
	b.PrependUint8Slot(slotTricksWon1, tricksWon[1], 0)
	b.PrependUint8Slot(slotTricksWon0, tricksWon[0], 0)
	b.PrependUint8Slot(slotCurrentPlayer, currentPlayer, 0)
	b.PrependUint8Slot(slotTrump, trump, 0)
	b.PrependUint32Slot(slotHand3, hands[3], 0)
	b.PrependUint32Slot(slotHand2, hands[2], 0)
	b.PrependUint32Slot(slotHand1, hands[1], 0)
	b.PrependUint32Slot(slotHand0, hands[0], 0)
	return b.EndObject()
}

// DecodedSolveRequest is the unpacked form of a SolveRequest table.
type DecodedSolveRequest struct {
	Hands         [4]uint32
	Trump         uint8
	CurrentPlayer uint8
	TricksWon     [2]uint8
	Points        [2]uint16
	DepthCap      int32
}

// DecodeSolveRequest reads a finished SolveRequest buffer back into its
// fields, defaulting absent slots to zero.
func DecodeSolveRequest(buf []byte) DecodedSolveRequest {
	t := rootTable(buf)

	var d DecodedSolveRequest
	d.Hands[0] = tableUint32(t, slotHand0)
	d.Hands[1] = tableUint32(t, slotHand1)
	d.Hands[2] = tableUint32(t, slotHand2)
	d.Hands[3] = tableUint32(t, slotHand3)
	d.Trump = tableUint8(t, slotTrump)
	d.CurrentPlayer = tableUint8(t, slotCurrentPlayer)
	d.TricksWon[0] = tableUint8(t, slotTricksWon0)
	d.TricksWon[1] = tableUint8(t, slotTricksWon1)
	d.Points[0] = tableUint16(t, slotPoints0)
	d.Points[1] = tableUint16(t, slotPoints1)
	d.DepthCap = tableInt32(t, slotDepthCap)
	return d
}

// SolveResponse field slots.
const (
	slotScore             = 0
	slotMove              = 1
	solveResponseNumFields = 2
)

// EncodeSolveResponse packs a solve's result into a flatbuffers table.
func EncodeSolveResponse(b *flatbuffers.Builder, score int32, move uint8) flatbuffers.UOffsetT {
	b.StartObject(solveResponseNumFields)
	b.PrependUint8Slot(slotMove, move, 0)
	b.PrependInt32Slot(slotScore, score, 0)
	return b.EndObject()
}

// DecodedSolveResponse is the unpacked form of a SolveResponse table.
type DecodedSolveResponse struct {
	Score int32
	Move  uint8
}

// DecodeSolveResponse reads a finished SolveResponse buffer.
func DecodeSolveResponse(buf []byte) DecodedSolveResponse {
	t := rootTable(buf)
	return DecodedSolveResponse{
		Score: tableInt32(t, slotScore),
		Move:  tableUint8(t, slotMove),
	}
}

func rootTable(buf []byte) *flatbuffers.Table {
	n := flatbuffers.GetUOffsetT(buf)
	return &flatbuffers.Table{Bytes: buf, Pos: n}
}

func fieldOffset(t *flatbuffers.Table, slot int) flatbuffers.UOffsetT {
	return flatbuffers.UOffsetT(t.Offset(flatbuffers.VOffsetT(4 + 2*slot)))
}

func tableUint32(t *flatbuffers.Table, slot int) uint32 {
	if o := fieldOffset(t, slot); o != 0 {
		return t.GetUint32(o + t.Pos)
	}
	return 0
}

func tableUint16(t *flatbuffers.Table, slot int) uint16 {
	if o := fieldOffset(t, slot); o != 0 {
		return t.GetUint16(o + t.Pos)
	}
	return 0
}

func tableUint8(t *flatbuffers.Table, slot int) uint8 {
	if o := fieldOffset(t, slot); o != 0 {
		return t.GetByte(o + t.Pos)
	}
	return 0
}

func tableInt32(t *flatbuffers.Table, slot int) int32 {
	if o := fieldOffset(t, slot); o != 0 {
		return t.GetInt32(o + t.Pos)
	}
	return 0
}
