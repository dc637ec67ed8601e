package index

// NDWI = (GREEN - NIR) / (GREEN + NIR), bands B03/B08. This is the canonical
// McFeeters form for open-water detection; the SWIR-based moisture variant is
// a different index and is deliberately not offered.

var ndwiStrategy = &Strategy{
	typ:           NDWI,
	output:        "ndwi",
	statsScript:   ndwiStatsScript,
	visualScript:  ndwiVisualScript,
	numericScript: ndwiNumericScript,
}

const ndwiStatsScript = `
  //VERSION=3
  function setup() {
    return {
      input: [{ bands: ["B03", "B08", "dataMask"] }],
      output: [
        { id: "ndwi", bands: 1 },
        { id: "dataMask", bands: 1 }
      ]
    };
  }

  function evaluatePixel(s) {
    let ndwi = (s.B03 - s.B08) / (s.B03 + s.B08);
    return { ndwi: [ndwi], dataMask: [s.dataMask] };
  }
`

const ndwiVisualScript = `
  //VERSION=3
  function setup() {
    return {
      input: [{ bands: ["B03", "B08", "dataMask"] }],
      output: [{ id: "default", bands: 4, sampleType: "UINT8" }]
    };
  }

  function colorRamp(ndwi) {
    if (ndwi < -0.2) return [139, 69, 19, 255];   // dry soil
    if (ndwi < 0.0)  return [210, 180, 140, 255]; // bare land
    if (ndwi < 0.2)  return [173, 216, 230, 255]; // moist soil
    if (ndwi < 0.4)  return [100, 149, 237, 255]; // shallow water
    return [0, 0, 139, 255];                      // deep water
  }

  function evaluatePixel(s) {
    if (s.dataMask === 0) return [0, 0, 0, 0];
    let ndwi = (s.B03 - s.B08) / (s.B03 + s.B08);
    return colorRamp(ndwi);
  }
`

const ndwiNumericScript = `
  //VERSION=3
  function setup() {
    return {
      input: [{ bands: ["B03", "B08", "dataMask"] }],
      output: [{ id: "default", bands: 1, sampleType: "FLOAT32" }]
    };
  }

  function evaluatePixel(s) {
    if (s.dataMask === 0) return [NaN];
    let ndwi = (s.B03 - s.B08) / (s.B03 + s.B08);
    return [ndwi];
  }
`
