// Command bridge is the cgo entry point other-language callers (the
// training pipeline) link against: flatbuffers in, flatbuffers out, no
// Go-side state retained between calls.
package main

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"
import (
	"unsafe"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/demanghon/contree.ai/bindings"
	"github.com/demanghon/contree.ai/engine"
	"github.com/demanghon/contree.ai/search"
)

const defaultTTSizeLog2 = 20

//export Solve
func Solve(requestPtr unsafe.Pointer, requestLen C.int, responseLen *C.int) unsafe.Pointer {
	requestBytes := C.GoBytes(requestPtr, requestLen)
	req := bindings.DecodeSolveRequest(requestBytes)

	s := engine.NewPlayState(req.Trump)
	s.Hands = req.Hands
	s.CurrentPlayer = req.CurrentPlayer
	s.TricksWon = req.TricksWon
	s.Points = req.Points

	sv := search.NewSolver(defaultTTSizeLog2)
	result := sv.Solve(s, int(req.DepthCap))

	builder := flatbuffers.NewBuilder(64)
	offset := bindings.EncodeSolveResponse(builder, int32(result.Score), result.Move)
	builder.Finish(offset)

	return copyToC(builder.FinishedBytes(), responseLen)
}

//export FreeResponse
func FreeResponse(ptr unsafe.Pointer) {
	C.free(ptr)
}

func copyToC(data []byte, outLen *C.int) unsafe.Pointer {
	*outLen = C.int(len(data))
	if len(data) == 0 {
		return nil
	}
	cBytes := C.malloc(C.size_t(len(data)))
	if cBytes == nil {
		*outLen = 0
		return nil
	}
	C.memcpy(cBytes, unsafe.Pointer(&data[0]), C.size_t(len(data)))
	return cBytes
}

func main() {} // Required for CGo
