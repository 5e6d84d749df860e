// Package ftpclient is a small FTP client. Its transport calls are package
// variables so that tests can swap them for impstub doubles.
package ftpclient

// DataModel is the FTP data representation type.
type DataModel int

// DataModel values.
const (
	ASCII DataModel = iota
	Binary
	EBCDIC
	Local
)

func (m DataModel) String() string {
	switch m {
	case ASCII:
		return "ascii"
	case Binary:
		return "binary"
	case EBCDIC:
		return "ebcdic"
	case Local:
		return "local"
	default:
		return "unknown"
	}
}

// File is a file to transfer.
type File struct {
	Content []byte
}

// SendFile sends the whole file, resuming after partial sends, and reports
// whether every byte went out. It gives up as soon as a send makes no progress.
func SendFile(file File) bool {
	total := 0
	length := len(file.Content)

	for {
		sent := send(file.Content[total:], uint(length-total)) //nolint:gosec // length-total is never negative

		if sent > 0 {
			total += sent
		}

		if total >= length || sent <= 0 {
			break
		}
	}

	return total == length
}

// SendText sends the file in ASCII mode, switching the data model first when needed.
func SendText(file File) bool {
	if getDataModel() != ASCII {
		setDataModel(ASCII)
	}

	return SendFile(file)
}

// SendWithRetry attempts one send and returns how many retries the failure
// handling needed.
func SendWithRetry(file File) int {
	retries := 0

	if send(file.Content, uint(len(file.Content))) == -1 {
		retries++
	}

	return retries
}

// unexported variables.
var (
	//nolint:gochecknoglobals // active data model of the connection
	currentModel = Binary
	//nolint:gochecknoglobals // replaceable in tests
	getDataModel = func() DataModel { return currentModel }
	//nolint:gochecknoglobals // replaceable in tests
	send func(content []byte, length uint) int = sendUnconnected
	//nolint:gochecknoglobals // replaceable in tests
	setDataModel = storeDataModel
)

// sendUnconnected is the transport before a connection exists: every send fails.
func sendUnconnected([]byte, uint) int {
	return -1
}

func storeDataModel(model DataModel) {
	currentModel = model
}
