package render

// PointsPerMM is the number of PDF points in one millimeter.
const PointsPerMM = 72 / 25.4

// Points converts millimeters to PDF points.
func Points(mm float64) float64 {
	return mm * PointsPerMM
}
