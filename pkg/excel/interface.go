package excel

// IWriter builds xlsx workbooks from tabular data.
type IWriter interface {
	BuildWorkbook(sheet Sheet) ([]byte, error)
}
