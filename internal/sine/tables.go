// Package sine implements the harmonic analyzer, phase synthesizer, and
// overlap-add frame synthesizer (spec.md §4.4, §4.8, §4.9), grounded
// verbatim on original_source/src/sine.c. The three tables below are
// machine-extracted from that file's Parzen, Hamming, and Hamming2 arrays
// to avoid hand-transcription errors in 512+320+160 literal float constants.
package sine

// parzenWindow is the 160-sample trapezoidal window applied to the
// overlap-add synthesis tail (Parzen in the original).
var parzenWindow = [160]float32{
	0.000000, 0.012500, 0.025000, 0.037500, 0.050000, 0.062500, 0.075000, 0.087500,
	0.100000, 0.112500, 0.125000, 0.137500, 0.150000, 0.162500, 0.175000, 0.187500,
	0.200000, 0.212500, 0.225000, 0.237500, 0.250000, 0.262500, 0.275000, 0.287500,
	0.300000, 0.312500, 0.325000, 0.337500, 0.350000, 0.362500, 0.375000, 0.387500,
	0.400000, 0.412500, 0.425000, 0.437500, 0.450000, 0.462500, 0.475000, 0.487500,
	0.500000, 0.512500, 0.525000, 0.537500, 0.550000, 0.562500, 0.575000, 0.587500,
	0.600000, 0.612500, 0.625000, 0.637500, 0.650000, 0.662500, 0.675000, 0.687500,
	0.700000, 0.712500, 0.725000, 0.737500, 0.750000, 0.762500, 0.775000, 0.787500,
	0.800000, 0.812500, 0.825000, 0.837499, 0.849999, 0.862499, 0.874999, 0.887499,
	0.899999, 0.912499, 0.924999, 0.937499, 0.949999, 0.962499, 0.974999, 0.987499,
	1.000000, 0.987500, 0.975000, 0.962500, 0.950000, 0.937500, 0.925000, 0.912500,
	0.900000, 0.887500, 0.875000, 0.862500, 0.850000, 0.837500, 0.825000, 0.812500,
	0.800000, 0.787500, 0.775000, 0.762500, 0.750000, 0.737500, 0.725000, 0.712500,
	0.700000, 0.687500, 0.675000, 0.662500, 0.650000, 0.637500, 0.625000, 0.612500,
	0.600000, 0.587500, 0.575000, 0.562500, 0.550000, 0.537500, 0.525000, 0.512500,
	0.500000, 0.487500, 0.475001, 0.462501, 0.450001, 0.437501, 0.425001, 0.412501,
	0.400001, 0.387501, 0.375001, 0.362501, 0.350001, 0.337501, 0.325001, 0.312501,
	0.300001, 0.287501, 0.275001, 0.262501, 0.250001, 0.237501, 0.225001, 0.212501,
	0.200001, 0.187501, 0.175001, 0.162501, 0.150001, 0.137501, 0.125001, 0.112501,
	0.100001, 0.087501, 0.075001, 0.062501, 0.050001, 0.037501, 0.025001, 0.012501,
}

// leakageKernel is the 512-point spectral leakage kernel of a windowed
// sinusoid at bin 0, used by voicing estimation to score how well a
// candidate harmonic amplitude explains the analysis spectrum around its
// bin (Hamming in the original; a sinc-like kernel, not a Hamming window).
var leakageKernel = [512]float32{
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000001, 0.000000, -0.000001, 0.000000, 0.000001, 0.000000, 0.000000, 0.000001,
	0.000000, -0.000001, 0.000000, 0.000001, 0.000000, -0.000001, 0.000000, 0.000001,
	0.000000, -0.000001, 0.000001, 0.000000, -0.000001, 0.000000, 0.000001, 0.000000,
	-0.000001, 0.000000, 0.000001, -0.000001, -0.000001, 0.000001, 0.000001, -0.000001,
	-0.000001, 0.000001, 0.000000, -0.000001, 0.000000, 0.000002, -0.000001, -0.000001,
	0.000001, 0.000001, -0.000002, -0.000001, 0.000002, 0.000000, -0.000002, 0.000000,
	0.000002, -0.000001, -0.000002, 0.000001, 0.000002, -0.000002, -0.000002, 0.000003,
	0.000001, -0.000003, 0.000000, 0.000004, -0.000001, -0.000004, 0.000002, 0.000003,
	-0.000003, -0.000003, 0.000004, 0.000002, -0.000005, -0.000001, 0.000006, -0.000001,
	-0.000007, 0.000003, 0.000006, -0.000005, -0.000006, 0.000007, 0.000004, -0.000010,
	-0.000002, 0.000012, -0.000001, -0.000013, 0.000005, 0.000013, -0.000009, -0.000013,
	0.000014, 0.000011, -0.000020, -0.000007, 0.000025, 0.000000, -0.000030, 0.000009,
	0.000034, -0.000020, -0.000035, 0.000035, 0.000033, -0.000053, -0.000025, 0.000075,
	0.000009, -0.000099, 0.000019, 0.000124, -0.000064, -0.000148, 0.000135, 0.000163,
	-0.000246, -0.000158, 0.000421, 0.000102, -0.000708, 0.000079, 0.001208, -0.000597,
	-0.002176, 0.002195, 0.004429, -0.008645, -0.012196, 0.065359, 0.262390, 0.495616,
	0.601647, 0.495616, 0.262390, 0.065359, -0.012196, -0.008645, 0.004429, 0.002195,
	-0.002176, -0.000597, 0.001208, 0.000079, -0.000708, 0.000102, 0.000421, -0.000158,
	-0.000246, 0.000163, 0.000135, -0.000148, -0.000064, 0.000124, 0.000019, -0.000099,
	0.000009, 0.000075, -0.000025, -0.000053, 0.000033, 0.000035, -0.000035, -0.000020,
	0.000034, 0.000009, -0.000030, 0.000000, 0.000025, -0.000007, -0.000020, 0.000011,
	0.000014, -0.000013, -0.000009, 0.000013, 0.000005, -0.000013, -0.000001, 0.000012,
	-0.000002, -0.000010, 0.000004, 0.000007, -0.000006, -0.000005, 0.000006, 0.000003,
	-0.000007, -0.000001, 0.000006, -0.000001, -0.000005, 0.000002, 0.000004, -0.000003,
	-0.000003, 0.000003, 0.000002, -0.000004, -0.000001, 0.000004, 0.000000, -0.000003,
	0.000001, 0.000003, -0.000002, -0.000002, 0.000002, 0.000001, -0.000002, -0.000001,
	0.000002, 0.000000, -0.000002, 0.000000, 0.000002, -0.000001, -0.000002, 0.000001,
	0.000001, -0.000001, -0.000001, 0.000002, 0.000000, -0.000001, 0.000000, 0.000001,
	-0.000001, -0.000001, 0.000001, 0.000001, -0.000001, -0.000001, 0.000001, 0.000000,
	-0.000001, 0.000000, 0.000001, 0.000000, -0.000001, 0.000000, 0.000001, -0.000001,
	0.000000, 0.000001, 0.000000, -0.000001, 0.000000, 0.000001, 0.000000, -0.000001,
	0.000000, 0.000001, 0.000000, 0.000000, 0.000001, 0.000000, -0.000001, 0.000000,
	0.000001, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
}

// analysisWindow is the 320-sample analysis window applied before the
// speech-frame FFT (Hamming2 in the original).
var analysisWindow = [320]float32{
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000001, 0.000002,
	0.000005, 0.000009, 0.000014, 0.000020, 0.000027, 0.000035, 0.000045, 0.000055,
	0.000067, 0.000079, 0.000093, 0.000107, 0.000123, 0.000140, 0.000158, 0.000177,
	0.000196, 0.000217, 0.000239, 0.000262, 0.000286, 0.000311, 0.000336, 0.000363,
	0.000391, 0.000419, 0.000448, 0.000479, 0.000510, 0.000542, 0.000575, 0.000608,
	0.000643, 0.000678, 0.000714, 0.000750, 0.000788, 0.000826, 0.000865, 0.000904,
	0.000944, 0.000985, 0.001026, 0.001068, 0.001110, 0.001153, 0.001197, 0.001241,
	0.001285, 0.001330, 0.001376, 0.001421, 0.001468, 0.001514, 0.001561, 0.001608,
	0.001655, 0.001703, 0.001751, 0.001799, 0.001847, 0.001896, 0.001944, 0.001993,
	0.002042, 0.002091, 0.002140, 0.002189, 0.002238, 0.002286, 0.002335, 0.002384,
	0.002433, 0.002481, 0.002529, 0.002577, 0.002625, 0.002673, 0.002720, 0.002768,
	0.002814, 0.002861, 0.002907, 0.002953, 0.002998, 0.003043, 0.003087, 0.003131,
	0.003175, 0.003218, 0.003260, 0.003302, 0.003344, 0.003384, 0.003424, 0.003464,
	0.003503, 0.003541, 0.003578, 0.003615, 0.003651, 0.003686, 0.003720, 0.003754,
	0.003787, 0.003819, 0.003850, 0.003880, 0.003909, 0.003938, 0.003965, 0.003992,
	0.004018, 0.004043, 0.004066, 0.004089, 0.004111, 0.004132, 0.004152, 0.004171,
	0.004188, 0.004205, 0.004221, 0.004236, 0.004249, 0.004262, 0.004273, 0.004284,
	0.004293, 0.004301, 0.004309, 0.004315, 0.004320, 0.004323, 0.004326, 0.004328,
	0.004328, 0.004328, 0.004326, 0.004323, 0.004320, 0.004315, 0.004309, 0.004301,
	0.004293, 0.004284, 0.004273, 0.004262, 0.004249, 0.004236, 0.004221, 0.004205,
	0.004188, 0.004171, 0.004152, 0.004132, 0.004111, 0.004089, 0.004066, 0.004043,
	0.004018, 0.003992, 0.003965, 0.003938, 0.003909, 0.003880, 0.003850, 0.003819,
	0.003787, 0.003754, 0.003720, 0.003686, 0.003651, 0.003615, 0.003578, 0.003541,
	0.003503, 0.003464, 0.003424, 0.003384, 0.003344, 0.003302, 0.003260, 0.003218,
	0.003175, 0.003131, 0.003087, 0.003043, 0.002998, 0.002953, 0.002907, 0.002861,
	0.002814, 0.002768, 0.002720, 0.002673, 0.002625, 0.002577, 0.002529, 0.002481,
	0.002433, 0.002384, 0.002335, 0.002286, 0.002238, 0.002189, 0.002140, 0.002091,
	0.002042, 0.001993, 0.001944, 0.001896, 0.001847, 0.001799, 0.001751, 0.001703,
	0.001655, 0.001608, 0.001561, 0.001514, 0.001468, 0.001421, 0.001376, 0.001330,
	0.001285, 0.001241, 0.001197, 0.001153, 0.001110, 0.001068, 0.001026, 0.000985,
	0.000944, 0.000904, 0.000865, 0.000826, 0.000788, 0.000750, 0.000714, 0.000678,
	0.000643, 0.000608, 0.000575, 0.000542, 0.000510, 0.000479, 0.000448, 0.000419,
	0.000391, 0.000363, 0.000336, 0.000311, 0.000286, 0.000262, 0.000239, 0.000217,
	0.000196, 0.000177, 0.000158, 0.000140, 0.000123, 0.000107, 0.000093, 0.000079,
	0.000067, 0.000055, 0.000045, 0.000035, 0.000027, 0.000020, 0.000014, 0.000009,
	0.000005, 0.000002, 0.000001, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
	0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
}
