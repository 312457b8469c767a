package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"path"
	"slices"
	"strings"
)

const (
	// HLSDir is the subtree of an ingestion output root holding all renditions.
	HLSDir             = "hls"
	MasterPlaylistName = "master.m3u8"
	// MasterPlaylistKey is the JSON key of the master manifest in a TranscodeResult.
	MasterPlaylistKey = "masterPlaylist"
)

// RenditionSpec is one entry of the encoding ladder.
type RenditionSpec struct {
	Name             string `json:"name"`
	Height           int    `json:"height"`
	VideoBitrateKbps int    `json:"videoBitrateKbps"`
}

// Bandwidth is the manifest bandwidth hint in bits per second.
func (s RenditionSpec) Bandwidth() int {
	return s.VideoBitrateKbps * 1000
}

func (s RenditionSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: rendition name is required", ErrInvalidInput)
	}
	if s.Height <= 0 || s.Height%2 != 0 {
		return fmt.Errorf("%w: rendition %s height must be a positive even number", ErrInvalidInput, s.Name)
	}
	if s.VideoBitrateKbps <= 0 {
		return fmt.Errorf("%w: rendition %s bitrate must be positive", ErrInvalidInput, s.Name)
	}
	return nil
}

var defaultLadder = []RenditionSpec{
	{Name: "240p", Height: 240, VideoBitrateKbps: 500},
	{Name: "480p", Height: 480, VideoBitrateKbps: 1500},
	{Name: "720p", Height: 720, VideoBitrateKbps: 3000},
	{Name: "1080p", Height: 1080, VideoBitrateKbps: 5000},
}

// DefaultLadder returns a copy of the production ladder in declaration order.
func DefaultLadder() []RenditionSpec {
	return slices.Clone(defaultLadder)
}

func ValidateLadder(ladder []RenditionSpec) error {
	if len(ladder) == 0 {
		return fmt.Errorf("%w: ladder is empty", ErrInvalidInput)
	}
	seen := make(map[string]bool, len(ladder))
	for _, s := range ladder {
		if err := s.Validate(); err != nil {
			return err
		}
		if seen[s.Name] {
			return fmt.Errorf("%w: duplicate rendition %s", ErrInvalidInput, s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

// RenditionDir is the rendition directory relative to the output root.
func RenditionDir(name string) string {
	return path.Join(HLSDir, name)
}

// PlaylistPath is the rendition playlist relative to the output root.
func PlaylistPath(name, stem string) string {
	return path.Join(HLSDir, name, stem+".m3u8")
}

// MasterPlaylistPath is the master manifest relative to the output root.
func MasterPlaylistPath() string {
	return path.Join(HLSDir, MasterPlaylistName)
}

type JobState string

const (
	JobStatePending   JobState = "pending"
	JobStateRunning   JobState = "running"
	JobStateSucceeded JobState = "succeeded"
	JobStateFailed    JobState = "failed"
)

// RenditionJob tracks one in-flight transcode. A job is owned by a single
// goroutine and moves Pending -> Running -> Succeeded or Failed. A job that
// never reached the encoder (cancelled while waiting for a slot) still passes
// through Running.
type RenditionJob struct {
	Spec       RenditionSpec
	InputPath  string
	OutputRoot string
	State      JobState
	Playlist   string
	Err        error
}

func NewRenditionJob(spec RenditionSpec, inputPath, outputRoot string) *RenditionJob {
	return &RenditionJob{
		Spec:       spec,
		InputPath:  inputPath,
		OutputRoot: outputRoot,
		State:      JobStatePending,
	}
}

func (j *RenditionJob) Start() error {
	if j.State != JobStatePending {
		return fmt.Errorf("rendition %s: cannot start from state %s", j.Spec.Name, j.State)
	}
	j.State = JobStateRunning
	return nil
}

func (j *RenditionJob) Succeed(playlist string) error {
	if j.State != JobStateRunning {
		return fmt.Errorf("rendition %s: cannot succeed from state %s", j.Spec.Name, j.State)
	}
	j.State = JobStateSucceeded
	j.Playlist = playlist
	return nil
}

func (j *RenditionJob) Fail(err error) error {
	if j.State != JobStateRunning {
		return fmt.Errorf("rendition %s: cannot fail from state %s", j.Spec.Name, j.State)
	}
	j.State = JobStateFailed
	j.Err = err
	return nil
}

func (j *RenditionJob) Terminal() bool {
	return j.State == JobStateSucceeded || j.State == JobStateFailed
}

// Dimensions is the probed size of the source video. Zero values mean unknown.
type Dimensions struct {
	Width  int
	Height int
}

// ScaledWidth mirrors the encoder's scale=-2:height filter: it keeps the source
// aspect ratio and rounds to an even width. Unknown sources are treated as 16:9.
func ScaledWidth(src Dimensions, targetHeight int) int {
	w, h := src.Width, src.Height
	if w <= 0 || h <= 0 {
		w, h = 16, 9
	}
	scaled := float64(targetHeight) * float64(w) / float64(h)
	return int(math.Round(scaled/2)) * 2
}

// BuildMasterManifest renders the HLS master playlist for a ladder. Entries follow
// ladder order and URIs are relative to the manifest itself.
func BuildMasterManifest(ladder []RenditionSpec, stem string, src Dimensions) []byte {
	var buf bytes.Buffer
	buf.WriteString("#EXTM3U\n")
	for _, s := range ladder {
		fmt.Fprintf(&buf, "#EXT-X-STREAM-INF:BANDWIDTH=%d,RESOLUTION=%dx%d\n",
			s.Bandwidth(), ScaledWidth(src, s.Height), s.Height)
		buf.WriteString(path.Join(s.Name, stem+".m3u8"))
		buf.WriteString("\n")
	}
	return buf.Bytes()
}

// TranscodeResult is the outcome of a successful ingestion. Paths use forward
// slashes and are relative to the ingestion output root.
type TranscodeResult struct {
	Order          []string
	Playlists      map[string]string
	MasterPlaylist string
}

func NewTranscodeResult(ladder []RenditionSpec, stem string) *TranscodeResult {
	r := &TranscodeResult{
		Order:          make([]string, 0, len(ladder)),
		Playlists:      make(map[string]string, len(ladder)),
		MasterPlaylist: MasterPlaylistPath(),
	}
	for _, s := range ladder {
		r.Order = append(r.Order, s.Name)
		r.Playlists[s.Name] = PlaylistPath(s.Name, stem)
	}
	return r
}

// WithBase returns a copy whose paths are joined onto base, typically a public URL prefix.
func (r *TranscodeResult) WithBase(base string) *TranscodeResult {
	out := &TranscodeResult{
		Order:          slices.Clone(r.Order),
		Playlists:      make(map[string]string, len(r.Playlists)),
		MasterPlaylist: joinBase(base, r.MasterPlaylist),
	}
	for name, p := range r.Playlists {
		out.Playlists[name] = joinBase(base, p)
	}
	return out
}

func joinBase(base, rel string) string {
	if base == "" {
		return rel
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(rel, "/")
}

// MarshalJSON writes a flat object with renditions in ladder order followed by
// the master playlist.
func (r *TranscodeResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	write := func(key, value string) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}
	for _, name := range r.Order {
		if err := write(name, r.Playlists[name]); err != nil {
			return nil, err
		}
	}
	if err := write(MasterPlaylistKey, r.MasterPlaylist); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *TranscodeResult) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.MasterPlaylist = raw[MasterPlaylistKey]
	delete(raw, MasterPlaylistKey)
	r.Playlists = raw
	r.Order = r.Order[:0]
	for _, s := range defaultLadder {
		if _, ok := raw[s.Name]; ok {
			r.Order = append(r.Order, s.Name)
		}
	}
	var extra []string
	for name := range raw {
		if !slices.Contains(r.Order, name) {
			extra = append(extra, name)
		}
	}
	slices.Sort(extra)
	r.Order = append(r.Order, extra...)
	return nil
}
