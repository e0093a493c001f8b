package api

import "github.com/sanverite/tactical-console/internal/core"

// FromStatus converts core.StatusSnapshot to the public StatusResponse.
func FromStatus(s core.StatusSnapshot) StatusResponse {
	return StatusResponse{
		DeviceID:      s.DeviceID,
		UptimeSeconds: s.UptimeSeconds,
		Version:       s.Version,
		Recording:     s.Recording,
	}
}

// FromOrientation converts core.OrientationSnapshot to the public
// OrientationResponse.
func FromOrientation(s core.OrientationSnapshot) OrientationResponse {
	o := s.Orientation
	return OrientationResponse{
		Orientation: OrientationView{
			Available: o.Available,
			Pitch:     o.Pitch,
			Roll:      o.Roll,
			Accel:     fromVector(o.Accel),
			Gyro:      fromVector(o.Gyro),
			Temp:      o.Temp,
		},
		Timestamp: s.Timestamp,
	}
}

// FromPosition converts core.PositionSnapshot to the public
// PositionResponse.
func FromPosition(s core.PositionSnapshot) PositionResponse {
	return PositionResponse{
		Lat:        s.Lat,
		Lon:        s.Lon,
		SpeedKph:   s.SpeedKph,
		HeadingDeg: s.HeadingDeg,
		Timestamp:  s.Timestamp,
	}
}

func fromVector(v core.Vector3) AxisView {
	return AxisView{X: v.X, Y: v.Y, Z: v.Z}
}
