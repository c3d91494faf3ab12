package html

// DatasheetTemplate renders one datasheet as a standalone page
const DatasheetTemplate = `<!DOCTYPE html>
<html lang="de">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Datasheet.Title}}</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background: #f5f7fa;
            color: #2c3e50;
            line-height: 1.6;
        }

        .container {
            max-width: 900px;
            margin: 0 auto;
            padding: 20px;
        }

        header {
            background: #2f5597;
            color: white;
            padding: 30px 20px;
            margin-bottom: 30px;
            border-radius: 8px;
        }

        header h1 {
            font-size: 1.8em;
            margin-bottom: 6px;
        }

        .meta {
            background: white;
            padding: 16px 20px;
            border-radius: 8px;
            margin-bottom: 24px;
        }

        .meta dt {
            font-weight: 600;
            float: left;
            width: 160px;
        }

        table {
            width: 100%;
            border-collapse: collapse;
            background: white;
            margin-bottom: 24px;
        }

        th, td {
            text-align: left;
            padding: 8px 12px;
            border-bottom: 1px solid #e1e4e8;
        }

        th {
            background: #dae3f3;
        }

        tr.odd td {
            background: #f8f9fb;
        }

        td.cell {
            color: #888;
            width: 70px;
        }

        td.value {
            text-align: right;
            font-variant-numeric: tabular-nums;
        }
    </style>
</head>
<body>
<div class="container">
    <header>
        <h1>{{.Datasheet.Title}}</h1>
        <p>{{.Datasheet.MotorString}} &middot; {{.Datasheet.PartNumber}}</p>
    </header>

    <dl class="meta">
        <dt>Erstellt</dt><dd>{{.Created}}</dd>
        <dt>Vorlage</dt><dd>{{.Datasheet.Layout}}</dd>
        <dt>Maßblatt</dt><dd>{{.Drawing}}</dd>
        <dt>Anfrage</dt><dd>{{.Datasheet.RequestID}}</dd>
    </dl>

    <table>
        <tr><th>Zelle</th><th>Motor</th><th>Wert</th></tr>
        {{range $i, $v := .Motor}}
        <tr class="{{rowClass $i}}"><td class="cell">{{$v.Cell}}</td><td>{{$v.Label}}</td><td class="value">{{text $v.Value}}</td></tr>
        {{end}}
    </table>

    {{if .Gear}}
    <table>
        <tr><th>Zelle</th><th>Getriebe</th><th>Wert</th></tr>
        {{range $i, $v := .Gear}}
        <tr class="{{rowClass $i}}"><td class="cell">{{$v.Cell}}</td><td>{{$v.Label}}</td><td class="value">{{text $v.Value}}</td></tr>
        {{end}}
    </table>
    {{end}}
</div>
</body>
</html>
`
