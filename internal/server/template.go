package server

const formTemplate = `<!DOCTYPE html>
<html lang="de">
<head>
<meta charset="UTF-8">
<title>Datenblatt-Generator</title>
<style>
body { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; margin: 2rem auto; max-width: 760px; color: #222; }
h1 { font-size: 1.5rem; border-bottom: 2px solid #2f5597; padding-bottom: .5rem; }
fieldset { border: 1px solid #ccd; border-radius: 4px; margin-bottom: 1rem; }
label { display: inline-block; min-width: 220px; margin: .25rem 0; }
select { min-width: 140px; }
.checks label { min-width: 180px; }
.error { background: #fde8e8; border: 1px solid #e0a0a0; padding: .75rem; border-radius: 4px; margin-bottom: 1rem; }
button { background: #2f5597; color: #fff; border: 0; padding: .6rem 1.4rem; border-radius: 4px; font-size: 1rem; }
</style>
</head>
<body>
<h1>Datenblatt-Generator</h1>
{{if .Error}}<div class="error">{{.Error}}</div>{{end}}
<form method="post" action="/datasheet">
<fieldset>
<legend>Motor</legend>
<label for="family">Motor</label>
<select id="family" name="family">{{range .Options.Families}}<option{{if eq $.Selection.Family .}} selected{{end}}>{{.}}</option>{{end}}</select><br>
<label for="variant">Variante</label>
<select id="variant" name="variant">{{range .Options.Variants}}<option{{if eq $.Selection.Variant .}} selected{{end}}>{{.}}</option>{{end}}</select><br>
<label for="frame_size">Baugröße</label>
<select id="frame_size" name="frame_size">{{range .Options.FrameSizes}}<option{{if eq $.Selection.FrameSize .}} selected{{end}}>{{.}}</option>{{end}}</select><br>
<label for="poles">Polzahl</label>
<select id="poles" name="poles">{{range .Options.Poles}}<option{{if eq $.Selection.Poles .}} selected{{end}}>{{.}}</option>{{end}}</select><br>
<label for="package_length">Paketlänge [cm]</label>
<select id="package_length" name="package_length">{{range .Options.PackageLengths}}<option{{if eq $.Selection.PackageLength .}} selected{{end}}>{{.}}</option>{{end}}</select><br>
<label for="rated_speed">Bemessungsdrehzahl [100/min]</label>
<select id="rated_speed" name="rated_speed">{{range .Options.RatedSpeeds}}<option{{if eq $.Selection.RatedSpeed .}} selected{{end}}>{{.}}</option>{{end}}</select>
</fieldset>
<fieldset>
<legend>Ausführung</legend>
<label for="protection_class">Schutzart</label>
<select id="protection_class" name="protection_class">{{range .Options.ProtectionClass}}<option{{if eq $.Selection.ProtectionClass .}} selected{{end}}>{{.}}</option>{{end}}</select><br>
<label for="duty_type">Betriebsart</label>
<select id="duty_type" name="duty_type">{{range .Options.DutyTypes}}<option{{if eq $.Selection.DutyType .}} selected{{end}}>{{.}}</option>{{end}}</select><br>
<label for="insulation">Isolationsklasse</label>
<select id="insulation" name="insulation">{{range .Options.InsulationClass}}<option{{if eq $.Selection.Insulation .}} selected{{end}}>{{.}}</option>{{end}}</select><br>
<label for="encoder">Rotorlagegeber</label>
<select id="encoder" name="encoder">{{range .Options.Encoders}}<option{{if eq $.Selection.Encoder .}} selected{{end}}>{{.}}</option>{{end}}</select>
</fieldset>
<fieldset class="checks">
<legend>Optionen</legend>
<label><input type="checkbox" name="brake"{{if .Selection.Brake}} checked{{end}}> Bremse</label>
<label><input type="checkbox" name="b5"{{if .Selection.B5Flange}} checked{{end}}> B5-Flansch</label>
<label><input type="checkbox" name="key_way"{{if .Selection.KeyWay}} checked{{end}}> Passfeder</label>
<label><input type="checkbox" name="block_flange"{{if .Selection.BlockFlange}} checked{{end}}> Blockflansch</label>
<label><input type="checkbox" name="connector"{{if .Selection.Connector}} checked{{end}}> Stecker</label>
<label><input type="checkbox" name="direct_pdf"{{if .Selection.DirectPDF}} checked{{end}}> Datenblatt direkt als PDF</label><br>
<label><input type="checkbox" name="gearbox"{{if .Selection.Gearbox}} checked{{end}}> Getriebe</label>
<label for="gear_ratio">Getriebeübersetzung</label>
<select id="gear_ratio" name="gear_ratio">{{range .Options.GearRatios}}<option{{if eq $.Selection.GearRatio .}} selected{{end}}>{{.}}</option>{{end}}</select>
</fieldset>
<button type="submit">Datenblatt erstellen</button>
</form>
</body>
</html>
`
