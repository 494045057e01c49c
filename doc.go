/*
Package neotags filters ctags index lines down to the tags an editor should
highlight in one source buffer.

The package is I/O-light: the core operates on a slice of raw tag lines and
the buffer contents. Typical flow:

 1. Read tag lines (ReadRecords handles plain, .gz, .zst and globbed sources).
 2. Compile a Filter for the requested language with New.
 3. Scan the records into a ResultSet.
 4. Emit the tags whose names occur in the buffer with ResultSet.Present.

Pipeline, per record, short-circuiting on the first failure:
  - skip empty records and '!' comments;
  - extract name, kind and language with the compiled pattern;
  - reject kinds not in the order spec;
  - reject languages LangAccepted does not accept;
  - reject names in the skip list;
  - reject (kind, name) pairs already accepted.

Language notes:
  - The requested language is embedded into the pattern as a regular
    expression, so editors may pass escaped names such as `C\+\+`.
  - C and C++ are treated as one language.
  - Equivalence pairs (from, to) let tags of language "from" through when
    "to" is requested.

Usage example:

	records := []string{
		"foo\tf.c\t/^int foo/;\"\tf\tlanguage:C",
		"bar\tf.c\t/^int bar/;\"\tf\tlanguage:C",
	}

	tags, _ := neotags.Select(records, "int foo(void) { return 0; }", neotags.Options{
		Lang:  "C",
		Order: "fc",
		Skip:  []string{"bar"},
	})

	fmt.Println(tags) // [ffoo]
*/
package neotags
