package record

// Greeting is the multi-byte text carried by the demonstration record.
const Greeting = "안녕하세요"

func xyz() Map {
	return Map{"x": Int(1), "y": Int(2), "z": Int(3)}
}

// Demo is the record written by the single-record writer.
func Demo() Record {
	return Record{
		"i": Int(123),
		"s": String("abc"),
		"u": String(Greeting),
		"b": Bytes("def"),
		"l": List{Int(123), String("abc"), String(Greeting), Strings("x", "y", "z"), xyz()},
		"m": Map{
			"i": Int(123),
			"s": String("abc"),
			"u": String(Greeting),
			"l": Strings("x", "y", "z"),
			"d": xyz(),
		},
	}
}

// Bulk is the record the bulk writer stores under key strconv.Itoa(i).
func Bulk(i int) Record {
	return Record{
		"i": Int(i),
		"s": String("xyz"),
		"l": List{Int(2), Int(4), Int(8), Int(16), Int(32), Nil{}, Int(128), Int(256)},
		"m": Map{"a": Int(2), "b": Int(4), "c": Int(8), "d": Int(16)},
	}
}
