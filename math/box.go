package math

type Box struct {
	MinPos Position
	MaxPos Position
}

func WorldBox() Box {
	return Box{
		MinPos: NewPosition(-90, -180),
		MaxPos: NewPosition(90, 180),
	}
}

func (b *Box) PosInside(p Position) bool {
	return p.Lat() >= b.MinPos.Lat() && p.Lat() <= b.MaxPos.Lat() && p.Lon() >= b.MinPos.Lon() && p.Lon() <= b.MaxPos.Lon()
}

func (a *Box) Contains(b Box) bool {
	return a.PosInside(b.MinPos) && a.PosInside(b.MaxPos)
}

func (a *Box) Equals(b Box) bool {
	return a.MinPos.Equals(b.MinPos) && a.MaxPos.Equals(b.MaxPos)
}

// BoundsAround returns the box enclosing every position, or the zero box when empty.
func BoundsAround(positions []Position) Box {
	if len(positions) == 0 {
		return Box{}
	}
	minLat, minLon := positions[0].Lat(), positions[0].Lon()
	maxLat, maxLon := minLat, minLon
	for _, p := range positions[1:] {
		minLat = min(minLat, p.Lat())
		minLon = min(minLon, p.Lon())
		maxLat = max(maxLat, p.Lat())
		maxLon = max(maxLon, p.Lon())
	}
	return Box{MinPos: NewPosition(minLat, minLon), MaxPos: NewPosition(maxLat, maxLon)}
}
