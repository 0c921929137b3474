// Package viz streams match snapshots to read-only websocket spectators
package viz

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lixenwraith/dippid-pong/game"
)

// Frame is one snapshot in both wire encodings
type Frame struct {
	Text   []byte // protojson
	Binary []byte // protobuf wire format
}

// SnapshotStruct converts a snapshot into a protobuf Struct
func SnapshotStruct(snap *game.Snapshot) (*structpb.Struct, error) {
	entities := make([]any, 0, len(snap.Entities))
	for _, e := range snap.Entities {
		entities = append(entities, map[string]any{
			"id":      int64(e.ID),
			"name":    e.Name,
			"tag":     e.Tag,
			"x":       e.X,
			"y":       e.Y,
			"w":       e.W,
			"h":       e.H,
			"color":   []any{int64(e.Color.R), int64(e.Color.G), int64(e.Color.B)},
			"dashed":  e.Dashed,
			"visible": e.Visible,
		})
	}

	s, err := structpb.NewStruct(map[string]any{
		"match":    snap.MatchID,
		"tick":     int64(snap.Tick),
		"state":    snap.State,
		"status":   snap.Status,
		"width":    snap.Width,
		"height":   snap.Height,
		"left":     playerMap(snap.Left),
		"right":    playerMap(snap.Right),
		"winner":   int64(snap.Winner),
		"entities": entities,
	})
	if err != nil {
		return nil, errors.Wrap(err, "snapshot struct")
	}
	return s, nil
}

func playerMap(p game.PlayerView) map[string]any {
	return map[string]any{
		"id":        int64(p.ID),
		"score":     int64(p.Score),
		"connected": p.Connected,
		"ready":     p.Ready,
		"label":     p.Label,
	}
}

// EncodeFrame renders a snapshot in both encodings
func EncodeFrame(snap *game.Snapshot) (Frame, error) {
	s, err := SnapshotStruct(snap)
	if err != nil {
		return Frame{}, err
	}
	return encodeStruct(s)
}

func encodeStruct(s *structpb.Struct) (Frame, error) {
	text, err := protojson.Marshal(s)
	if err != nil {
		return Frame{}, errors.Wrap(err, "protojson")
	}
	bin, err := proto.Marshal(s)
	if err != nil {
		return Frame{}, errors.Wrap(err, "proto")
	}
	return Frame{Text: text, Binary: bin}, nil
}
