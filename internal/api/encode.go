package api

import (
	"encoding/json"
	"mime"
	"net/http"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

const (
	contentTypeJSON = "application/json"
	contentTypeCBOR = "application/cbor"
)

// cborMode uses Core Deterministic Encoding so a snapshot always encodes
// to the same bytes. Field names come from the json tags.
var cborMode cbor.EncMode

func init() {
	var err error
	cborMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("api: CBOR encoder initialization failed: " + err.Error())
	}
}

// writeSnapshot writes an API payload with no-cache semantics, as CBOR
// when the client explicitly accepts it and as JSON otherwise.
func writeSnapshot(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Cache-Control", "no-cache")
	if acceptsCBOR(r.Header.Get("Accept")) {
		writeCBOR(w, http.StatusOK, v)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(v)
}

func writeCBOR(w http.ResponseWriter, status int, v any) {
	data, err := cborMode.Marshal(v)
	if err != nil {
		// Wire types are plain structs; fall back rather than fail.
		writeJSON(w, status, v)
		return
	}
	w.Header().Set("Content-Type", contentTypeCBOR)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// acceptsCBOR reports whether an Accept header names application/cbor
// with a non-zero quality. Wildcards do not count; JSON stays the default.
func acceptsCBOR(accept string) bool {
	if accept == "" {
		return false
	}
	for _, part := range strings.Split(accept, ",") {
		mediaType, params, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil || mediaType != contentTypeCBOR {
			continue
		}
		if q, ok := params["q"]; ok && isZeroQuality(q) {
			continue
		}
		return true
	}
	return false
}

func isZeroQuality(q string) bool {
	q = strings.TrimSpace(q)
	return q == "0" || (strings.HasPrefix(q, "0.") && strings.Trim(q[2:], "0") == "")
}
