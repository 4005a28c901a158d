package v04

// Units are open enumerations: the constants below cover the symbols the
// format recognizes, but any other string is carried verbatim so an unknown
// unit survives a decode/encode round trip unchanged.

// SpaceUnit is the physical unit of a space axis. Empty means unspecified.
type SpaceUnit string

const (
	SpaceUnitAngstrom   SpaceUnit = "angstrom"
	SpaceUnitAttometer  SpaceUnit = "attometer"
	SpaceUnitCentimeter SpaceUnit = "centimeter"
	SpaceUnitDecimeter  SpaceUnit = "decimeter"
	SpaceUnitExameter   SpaceUnit = "exameter"
	SpaceUnitFemtometer SpaceUnit = "femtometer"
	SpaceUnitFoot       SpaceUnit = "foot"
	SpaceUnitGigameter  SpaceUnit = "gigameter"
	SpaceUnitHectometer SpaceUnit = "hectometer"
	SpaceUnitInch       SpaceUnit = "inch"
	SpaceUnitKilometer  SpaceUnit = "kilometer"
	SpaceUnitMegameter  SpaceUnit = "megameter"
	SpaceUnitMeter      SpaceUnit = "meter"
	SpaceUnitMicrometer SpaceUnit = "micrometer"
	SpaceUnitMile       SpaceUnit = "mile"
	SpaceUnitMillimeter SpaceUnit = "millimeter"
	SpaceUnitNanometer  SpaceUnit = "nanometer"
	SpaceUnitParsec     SpaceUnit = "parsec"
	SpaceUnitPetameter  SpaceUnit = "petameter"
	SpaceUnitPicometer  SpaceUnit = "picometer"
	SpaceUnitTerameter  SpaceUnit = "terameter"
	SpaceUnitYard       SpaceUnit = "yard"
	SpaceUnitYoctometer SpaceUnit = "yoctometer"
	SpaceUnitYottameter SpaceUnit = "yottameter"
	SpaceUnitZeptometer SpaceUnit = "zeptometer"
	SpaceUnitZettameter SpaceUnit = "zettameter"
)

var knownSpaceUnits = map[SpaceUnit]struct{}{
	SpaceUnitAngstrom: {}, SpaceUnitAttometer: {}, SpaceUnitCentimeter: {},
	SpaceUnitDecimeter: {}, SpaceUnitExameter: {}, SpaceUnitFemtometer: {},
	SpaceUnitFoot: {}, SpaceUnitGigameter: {}, SpaceUnitHectometer: {},
	SpaceUnitInch: {}, SpaceUnitKilometer: {}, SpaceUnitMegameter: {},
	SpaceUnitMeter: {}, SpaceUnitMicrometer: {}, SpaceUnitMile: {},
	SpaceUnitMillimeter: {}, SpaceUnitNanometer: {}, SpaceUnitParsec: {},
	SpaceUnitPetameter: {}, SpaceUnitPicometer: {}, SpaceUnitTerameter: {},
	SpaceUnitYard: {}, SpaceUnitYoctometer: {}, SpaceUnitYottameter: {},
	SpaceUnitZeptometer: {}, SpaceUnitZettameter: {},
}

// Recognized reports whether the unit is one of the format's known symbols.
func (u SpaceUnit) Recognized() bool {
	_, ok := knownSpaceUnits[u]
	return ok
}

// TimeUnit is the physical unit of a time axis. Empty means unspecified.
type TimeUnit string

const (
	TimeUnitAttosecond  TimeUnit = "attosecond"
	TimeUnitCentisecond TimeUnit = "centisecond"
	TimeUnitDay         TimeUnit = "day"
	TimeUnitDecisecond  TimeUnit = "decisecond"
	TimeUnitExasecond   TimeUnit = "exasecond"
	TimeUnitFemtosecond TimeUnit = "femtosecond"
	TimeUnitGigasecond  TimeUnit = "gigasecond"
	TimeUnitHectosecond TimeUnit = "hectosecond"
	TimeUnitHour        TimeUnit = "hour"
	TimeUnitKilosecond  TimeUnit = "kilosecond"
	TimeUnitMegasecond  TimeUnit = "megasecond"
	TimeUnitMicrosecond TimeUnit = "microsecond"
	TimeUnitMillisecond TimeUnit = "millisecond"
	TimeUnitMinute      TimeUnit = "minute"
	TimeUnitNanosecond  TimeUnit = "nanosecond"
	TimeUnitPetasecond  TimeUnit = "petasecond"
	TimeUnitPicosecond  TimeUnit = "picosecond"
	TimeUnitSecond      TimeUnit = "second"
	TimeUnitTerasecond  TimeUnit = "terasecond"
	TimeUnitYoctosecond TimeUnit = "yoctosecond"
	TimeUnitYottasecond TimeUnit = "yottasecond"
	TimeUnitZeptosecond TimeUnit = "zeptosecond"
	TimeUnitZettasecond TimeUnit = "zettasecond"
)

var knownTimeUnits = map[TimeUnit]struct{}{
	TimeUnitAttosecond: {}, TimeUnitCentisecond: {}, TimeUnitDay: {},
	TimeUnitDecisecond: {}, TimeUnitExasecond: {}, TimeUnitFemtosecond: {},
	TimeUnitGigasecond: {}, TimeUnitHectosecond: {}, TimeUnitHour: {},
	TimeUnitKilosecond: {}, TimeUnitMegasecond: {}, TimeUnitMicrosecond: {},
	TimeUnitMillisecond: {}, TimeUnitMinute: {}, TimeUnitNanosecond: {},
	TimeUnitPetasecond: {}, TimeUnitPicosecond: {}, TimeUnitSecond: {},
	TimeUnitTerasecond: {}, TimeUnitYoctosecond: {}, TimeUnitYottasecond: {},
	TimeUnitZeptosecond: {}, TimeUnitZettasecond: {},
}

// Recognized reports whether the unit is one of the format's known symbols.
func (u TimeUnit) Recognized() bool {
	_, ok := knownTimeUnits[u]
	return ok
}
