package index

// EVI = 2.5 * (NIR - RED) / (NIR + 6*RED - 7.5*BLUE + 1), bands B08/B04/B02.

var eviStrategy = &Strategy{
	typ:           EVI,
	output:        "evi",
	statsScript:   eviStatsScript,
	visualScript:  eviVisualScript,
	numericScript: eviNumericScript,
}

const eviStatsScript = `
  //VERSION=3
  function setup() {
    return {
      input: [{ bands: ["B02", "B04", "B08", "dataMask"] }],
      output: [
        { id: "evi", bands: 1 },
        { id: "dataMask", bands: 1 }
      ]
    };
  }

  function evaluatePixel(s) {
    let evi =
      2.5 * (s.B08 - s.B04) /
      (s.B08 + 6.0 * s.B04 - 7.5 * s.B02 + 1.0);

    return { evi: [evi], dataMask: [s.dataMask] };
  }
`

const eviVisualScript = `
  //VERSION=3
  function setup() {
    return {
      input: [{ bands: ["B02", "B04", "B08", "dataMask"] }],
      output: [{ id: "default", bands: 4, sampleType: "UINT8" }]
    };
  }

  function colorRamp(evi) {
    if (evi < 0.0)  return [0, 0, 120, 255];     // Water / no vegetation
    if (evi < 0.2)  return [139, 69, 19, 255];   // Bare soil
    if (evi < 0.4)  return [173, 205, 50, 255];  // Sparse veg
    if (evi < 0.6)  return [34, 139, 34, 255];   // Moderate veg
    return [0, 100, 0, 255];                     // Dense veg
  }

  function evaluatePixel(s) {
    if (s.dataMask === 0) return [0, 0, 0, 0];

    let evi =
      2.5 * (s.B08 - s.B04) /
      (s.B08 + 6.0 * s.B04 - 7.5 * s.B02 + 1.0);

    return colorRamp(evi);
  }
`

const eviNumericScript = `
  //VERSION=3
  function setup() {
    return {
      input: [{ bands: ["B02", "B04", "B08", "dataMask"] }],
      output: [{ id: "default", bands: 1, sampleType: "FLOAT32" }]
    };
  }

  function evaluatePixel(s) {
    if (s.dataMask === 0) return [NaN];

    let evi =
      2.5 * (s.B08 - s.B04) /
      (s.B08 + 6.0 * s.B04 - 7.5 * s.B02 + 1.0);

    return [evi];
  }
`
